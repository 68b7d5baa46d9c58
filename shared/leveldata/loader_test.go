package leveldata

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

const tileset = `
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="3" columns="3">
  <tile id="0"><properties><property name="top" type="float" value="0"/></properties></tile>
  <tile id="1"><properties><property name="top" type="float" value="1"/></properties></tile>
  <tile id="2"><properties><property name="top" type="float" value="3"/></properties></tile>
 </tileset>`

const terrain = `
 <layer id="1" name="terrain" width="4" height="3">
  <data encoding="csv">
1,1,2,0,
1,0,3,1,
1,1,1,1
</data>
 </layer>`

const spawn = `
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="16" y="16"><properties><property name="yaw" type="float" value="90"/></properties></object>
 </objectgroup>`

const objects = `
 <objectgroup id="3" name="Walls">
  <object id="2" x="64" y="0" width="32" height="96"><properties><property name="maxY" type="float" value="5"/></properties></object>
 </objectgroup>
 <objectgroup id="4" name="GrapplePoints">
  <object id="3" x="32" y="64"><properties><property name="y" type="float" value="8"/></properties><point/></object>
 </objectgroup>
 <objectgroup id="5" name="FinishLine">
  <object id="4" x="96" y="64" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="6" name="MovingPlatforms">
  <object id="5" x="0" y="64" width="64" height="32">
   <properties>
    <property name="y" type="float" value="2"/>
    <property name="dx" type="float" value="4"/>
    <property name="duration" type="float" value="3"/>
   </properties>
  </object>
 </objectgroup>`

func tmx(props string, body ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="7" nextobjectid="6">
 <properties>` + props + `</properties>` + strings.Join(body, "") + `
</map>`
}

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func approx(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestLoad(t *testing.T) {
	props := `
  <property name="name" value="Test Yard"/>
  <property name="next" value="02_next"/>
  <property name="scale" type="float" value="2"/>`
	fsys := fstest.MapFS{
		"levels/01_yard.tmx": file(tmx(props, tileset, terrain, spawn, objects)),
	}

	l, err := Load(fsys, "levels/01_yard.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if l.ID != "01_yard" || l.Name != "Test Yard" || l.Next != "02_next" {
		t.Errorf("id/name/next = %q/%q/%q", l.ID, l.Name, l.Next)
	}
	if l.Width != 4 || l.Depth != 3 || l.Scale != 2 {
		t.Errorf("size = %dx%d scale %v", l.Width, l.Depth, l.Scale)
	}
	if w, d := l.Size(); w != 8 || d != 6 {
		t.Errorf("Size() = %v, %v", w, d)
	}
	if len(l.Terrain) != 10 {
		t.Errorf("terrain columns = %d, want 10", len(l.Terrain))
	}

	tops := []struct {
		x, z float64
		top  float64
		ok   bool
	}{
		{1, 1, 0, true},
		{5, 1, 1, true},
		{7, 1, 0, false},
		{2.5, 2.5, 0, false},
		{4.5, 2.5, 3, true},
		{-1, 1, 0, false},
		{1, 20, 0, false},
	}
	for _, tt := range tops {
		top, ok := l.TopAt(tt.x, tt.z)
		if ok != tt.ok || top != tt.top {
			t.Errorf("TopAt(%v, %v) = %v, %v; want %v, %v", tt.x, tt.z, top, ok, tt.top, tt.ok)
		}
	}

	if !approx(l.Spawn, mgl64.Vec3{1, 0, 1}) || math.Abs(l.SpawnYaw-math.Pi/2) > 1e-9 {
		t.Errorf("spawn = %v yaw %v", l.Spawn, l.SpawnYaw)
	}
	if l.Respawn != l.Spawn {
		t.Errorf("respawn = %v, want the spawn %v", l.Respawn, l.Spawn)
	}

	blocks := []struct {
		name string
		got  []Block
		want Block
	}{
		{"wall", l.Walls, Block{mgl64.Vec3{4, 0, 0}, mgl64.Vec3{6, 5, 6}}},
		{"grapple point", l.GrapplePoints, Block{mgl64.Vec3{1.5, 7.5, 3.5}, mgl64.Vec3{2.5, 8.5, 4.5}}},
		{"finish line", l.FinishLines, Block{mgl64.Vec3{6, 0, 4}, mgl64.Vec3{8, 4, 6}}},
	}
	for _, tt := range blocks {
		if len(tt.got) != 1 || !approx(tt.got[0].Min, tt.want.Min) || !approx(tt.got[0].Max, tt.want.Max) {
			t.Errorf("%s = %v, want [%v]", tt.name, tt.got, tt.want)
		}
	}

	if len(l.Platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(l.Platforms))
	}
	p := l.Platforms[0]
	if !approx(p.Min, mgl64.Vec3{0, 1.5, 4}) || !approx(p.Max, mgl64.Vec3{4, 2, 6}) ||
		p.Offset != (mgl64.Vec3{4, 0, 0}) || p.Duration != 3 {
		t.Errorf("platform = %+v", p)
	}
}

func TestLoadDefaults(t *testing.T) {
	bare := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="7" nextobjectid="6">` +
		tileset + terrain + spawn + `
</map>`
	tests := []struct {
		name string
		doc  string
	}{
		{"empty properties", tmx("", tileset, terrain, spawn)},
		{"no properties element", bare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"lvl.tmx": file(tt.doc)}
			l, err := Load(fsys, "lvl.tmx")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if l.Name != "lvl" || l.Scale != defaultScale || l.Next != "" {
				t.Errorf("defaults: name %q scale %v next %q", l.Name, l.Scale, l.Next)
			}
		})
	}
}

func TestSpawnLiftedOntoTerrain(t *testing.T) {
	raised := `
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="80" y="48"/>
 </objectgroup>
 <objectgroup id="3" name="Respawn">
  <object id="2" x="16" y="80"><properties><property name="y" type="float" value="6"/></properties></object>
 </objectgroup>`
	fsys := fstest.MapFS{"lvl.tmx": file(tmx("", tileset, terrain, raised))}

	l, err := Load(fsys, "lvl.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !approx(l.Spawn, mgl64.Vec3{5, 3, 3}) {
		t.Errorf("spawn = %v", l.Spawn)
	}
	if !approx(l.Respawn, mgl64.Vec3{1, 6, 5}) {
		t.Errorf("respawn = %v", l.Respawn)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"no spawn", tmx("", tileset, terrain), ErrNoSpawn},
		{"no terrain", tmx("", tileset, spawn), nil},
		{"not xml", "garbage", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fstest.MapFS{"lvl.tmx": file(tt.data)}, "lvl.tmx")
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAllOrdersByFileName(t *testing.T) {
	level := tmx("", tileset, terrain, spawn)
	fsys := fstest.MapFS{
		"levels/02_b.tmx":  file(level),
		"levels/01_a.tmx":  file(level),
		"levels/readme.md": file("not a level"),
	}
	levels, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 || levels[0].ID != "01_a" || levels[1].ID != "02_b" {
		t.Errorf("levels = %v", levels)
	}

	if _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}
