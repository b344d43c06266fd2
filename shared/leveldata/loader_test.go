package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="8" tileheight="8" infinite="0" nextlayerid="4" nextobjectid="5">
 <objectgroup id="1" name="Bodies">
  <object id="1" name="floor" x="0" y="0" width="160" height="80">
   <properties>
    <property name="height" type="float" value="1"/>
    <property name="friction" type="float" value="0.5"/>
   </properties>
  </object>
  <object id="2" name="ball" x="88" y="40" width="16" height="16">
   <properties>
    <property name="kind" value="dynamic"/>
    <property name="shape" value="ball"/>
    <property name="y" type="float" value="6"/>
    <property name="density" type="float" value="3"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Platforms">
  <object id="3" name="lift" x="0" y="0" width="16" height="16">
   <properties>
    <property name="travelX" type="float" value="5"/>
    <property name="y" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="4" name="spawn" x="80" y="64">
   <properties>
    <property name="y" type="float" value="2.5"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	arena, err := Load(fsys, "arenas/test.tmx")
	require.NoError(t, err)
	assert.Equal(t, "test", arena.Name)

	require.Len(t, arena.Props, 2)
	floor := arena.Props[0]
	assert.Equal(t, physics.Static, floor.Kind)
	assert.Equal(t, physics.Cuboid(10, 0.5, 5), floor.Shape)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, floor.Position)
	assert.Equal(t, 0.5, floor.Friction)
	assert.Equal(t, defaultDensity, floor.Density)

	ball := arena.Props[1]
	assert.Equal(t, physics.Dynamic, ball.Kind)
	assert.Equal(t, physics.Ball(1), ball.Shape)
	// center (96, 48) px = (12, 6) tiles, origin at (10, 5)
	assert.Equal(t, mgl64.Vec3{2, 6, 1}, ball.Position)
	assert.Equal(t, 3.0, ball.Density)

	require.Len(t, arena.Platforms, 1)
	lift := arena.Platforms[0]
	assert.Equal(t, mgl64.Vec3{5, 0, 0}, lift.Travel)
	assert.Equal(t, defaultPeriod, lift.Period)
	assert.Equal(t, mgl64.Vec3{-9, 2, -4}, lift.Position)

	assert.True(t, arena.HasSpawn)
	assert.Equal(t, mgl64.Vec3{0, 2.5, 3}, arena.Spawn)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		path string
	}{
		{
			name: "missing file",
			path: "nope.tmx",
		},
		{
			name: "unknown kind",
			path: "bad.tmx",
			data: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="8" tileheight="8">
 <objectgroup id="1" name="Bodies">
  <object id="1" name="thing" x="0" y="0" width="8" height="8">
   <properties><property name="kind" value="floating"/></properties>
  </object>
 </objectgroup>
</map>
`,
		},
		{
			name: "no bodies",
			path: "empty.tmx",
			data: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="8" tileheight="8">
</map>
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tt.data != "" {
				fsys[tt.path] = &fstest.MapFile{Data: []byte(tt.data)}
			}
			_, err := Load(fsys, tt.path)
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	arena := Default()
	require.NotEmpty(t, arena.Props)
	assert.Equal(t, physics.Static, arena.Props[0].Kind)
	assert.False(t, arena.HasSpawn)
	for _, p := range arena.Platforms {
		assert.Greater(t, p.Period, 0.0)
	}
}
