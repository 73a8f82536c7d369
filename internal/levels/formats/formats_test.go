package formats

import (
	"testing"
	"testing/fstest"
)

func TestIndexFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"level_012.tmx", 12},
		{"12-canopy.yaml", 12},
		{"dir/level7.yml", 7},
		{"canopy.yaml", 0},
		{"v2_level_30.yaml", 30},
	}

	for _, tc := range tests {
		if got := IndexFromFilename(tc.path); got != tc.want {
			t.Errorf("IndexFromFilename(%q) = %d, expected %d", tc.path, got, tc.want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
index: 3
name: Canopy
platforms:
  - { x: 0, y: 800, w: 1280, h: 160 }
  - { x: 200, y: 650, w: 200, h: 40 }
enemies:
  - { kind: walker, x: 220, y: 500 }
powerups:
  - { kind: shield, x: 250, y: 600 }
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if l.Index != 3 || l.Name != "Canopy" {
		t.Errorf("header = %d %q", l.Index, l.Name)
	}
	if len(l.Platforms) != 2 || l.Platforms[1].W != 200 {
		t.Errorf("platforms = %+v", l.Platforms)
	}
	if len(l.Enemies) != 1 || l.Enemies[0].Kind != "walker" {
		t.Errorf("enemies = %+v", l.Enemies)
	}
	if len(l.PowerUps) != 1 || l.PowerUps[0].Kind != "shield" {
		t.Errorf("powerups = %+v", l.PowerUps)
	}

	out, err := MarshalYAML(l)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}
	again, err := ParseYAML(out)
	if err != nil || len(again.Platforms) != 2 || again.Name != "Canopy" {
		t.Errorf("re-parse of marshalled level failed: %+v, %v", again, err)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML([]byte("platforms: [1, 2")); err == nil {
		t.Error("ParseYAML() should fail on malformed input")
	}
}

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="platforms">
  <object id="1" x="0" y="800" width="1280" height="160"/>
  <object id="2" x="300" y="620" width="200" height="40"/>
 </objectgroup>
 <objectgroup id="2" name="enemies">
  <object id="3" name="chaser" x="320" y="500" width="64" height="64"/>
  <object id="4" x="900" y="600" width="96" height="128">
   <properties>
    <property name="kind" value="walker"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="powerups">
  <object id="5" name="fire" x="350" y="570" width="32" height="32"/>
 </objectgroup>
</map>
`

func TestParseTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"level_15.tmx": &fstest.MapFile{Data: []byte(sampleTMX)},
	}

	l, err := ParseTMX(fsys, "level_15.tmx")
	if err != nil {
		t.Fatalf("ParseTMX() failed: %v", err)
	}
	if l.Index != 15 {
		t.Errorf("Index = %d, expected 15", l.Index)
	}
	if len(l.Platforms) != 2 || l.Platforms[1] != (Box{X: 300, Y: 620, W: 200, H: 40}) {
		t.Errorf("platforms = %+v", l.Platforms)
	}
	if len(l.Enemies) != 2 || l.Enemies[0].Kind != "chaser" || l.Enemies[1].Kind != "walker" {
		t.Errorf("enemies = %+v", l.Enemies)
	}
	if len(l.PowerUps) != 1 || l.PowerUps[0].Kind != "fire" {
		t.Errorf("powerups = %+v", l.PowerUps)
	}
}
