package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/bastion/config"
	"github.com/go-gl/mathgl/mgl64"
)

const smallLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Towers">
  <object id="1" x="64" y="64">
   <properties>
    <property name="fireInterval" type="float" value="0.5"/>
    <property name="range" type="float" value="3"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Targets">
  <object id="2" x="0" y="0">
   <point/>
  </object>
  <object id="3" x="128" y="128">
   <properties>
    <property name="pathName" value="missing"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/small.tmx":  {Data: []byte(smallLevel)},
		"levels/broken.tmx": {Data: []byte("<map")},
		"levels/notes.txt":  {Data: []byte("ignored")},
	}
}

func TestLoadLevelDefaultsAndOverrides(t *testing.T) {
	level, err := NewLevelLoaderFS(testFS()).LoadLevel("small")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Width != 4 || level.Depth != 4 {
		t.Errorf("extent = %vx%v, want 4x4", level.Width, level.Depth)
	}

	if len(level.Towers) != 1 {
		t.Fatalf("got %d towers, want 1", len(level.Towers))
	}
	tower := level.Towers[0]
	if want := (mgl64.Vec3{0, config.Tower.Height, 0}); !tower.Position.ApproxEqual(want) {
		t.Errorf("tower position = %v, want %v", tower.Position, want)
	}
	if tower.FireInterval != 0.5 {
		t.Errorf("fire interval = %v, want 0.5", tower.FireInterval)
	}
	if tower.Range != 3 {
		t.Errorf("range = %v, want 3", tower.Range)
	}
	if tower.ProjectileSpeed != config.Projectile.Speed {
		t.Errorf("projectile speed = %v, want default %v", tower.ProjectileSpeed, config.Projectile.Speed)
	}
	if tower.MuzzleHeight != config.Tower.MuzzleOffset.Y() {
		t.Errorf("muzzle height = %v, want default", tower.MuzzleHeight)
	}

	if len(level.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(level.Targets))
	}
	corner := level.Targets[0]
	if want := (mgl64.Vec3{-2, config.Target.Height, -2}); !corner.Position.ApproxEqual(want) {
		t.Errorf("target position = %v, want %v", corner.Position, want)
	}
	if corner.Health != config.Target.Health {
		t.Errorf("target health = %v, want default %v", corner.Health, config.Target.Health)
	}
	if pts := level.PathFor(level.Targets[1]); pts != nil {
		t.Errorf("unknown patrol path resolved to %v", pts)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	loader := NewLevelLoaderFS(testFS())
	for _, name := range []string{"broken", "absent"} {
		if _, err := loader.LoadLevel(name); err == nil {
			t.Errorf("LoadLevel(%q) succeeded, want error", name)
		}
	}
}

func TestMustLoadLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewLevelLoaderFS(testFS()).MustLoadLevel("absent")
}

func TestNames(t *testing.T) {
	names, err := NewLevelLoaderFS(testFS()).Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 2 || names[0] != "broken" || names[1] != "small" {
		t.Errorf("Names = %v, want [broken small]", names)
	}
}

func TestEmbeddedLevels(t *testing.T) {
	loader := NewLevelLoader()
	names, err := loader.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	for _, name := range names {
		if _, err := loader.LoadLevel(name); err != nil {
			t.Errorf("LoadLevel(%q): %v", name, err)
		}
	}
}

func TestMeadow(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("meadow")

	if len(level.Towers) != 1 || len(level.Targets) != 3 {
		t.Fatalf("got %d towers, %d targets; want 1, 3", len(level.Towers), len(level.Targets))
	}
	if want := (mgl64.Vec3{0, config.Tower.Height, 0}); !level.Towers[0].Position.ApproxEqual(want) {
		t.Errorf("keep at %v, want %v", level.Towers[0].Position, want)
	}
	if want := (mgl64.Vec3{-3, config.Target.Height, -4}); !level.Targets[0].Position.ApproxEqual(want) {
		t.Errorf("scout at %v, want %v", level.Targets[0].Position, want)
	}
	if level.Targets[1].Health != 5 {
		t.Errorf("brute health = %v, want 5", level.Targets[1].Health)
	}

	walker := level.Targets[2]
	if walker.PatrolSpeed != 1.5 {
		t.Errorf("walker speed = %v, want 1.5", walker.PatrolSpeed)
	}
	path := level.PathFor(walker)
	if len(path) != 4 {
		t.Fatalf("walker path has %d points, want 4", len(path))
	}
	if want := (mgl64.Vec3{-4.5, config.Target.Height, -4.5}); !path[0].ApproxEqual(want) {
		t.Errorf("path start = %v, want %v", path[0], want)
	}
	if want := (mgl64.Vec3{4.5, config.Target.Height, -4.5}); !path[1].ApproxEqual(want) {
		t.Errorf("path second point = %v, want %v", path[1], want)
	}
}
