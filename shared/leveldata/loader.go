package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

const (
	defaultScale         = 2.0
	defaultWallHeight    = 4.0
	defaultGrappleSize   = 1.0
	defaultFinishHeight  = 4.0
	defaultPlatformThick = 0.5
	defaultPlatformTime  = 2.0
)

// Load parses one TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	// Map properties are optional; go-tiled leaves the pointer nil without them.
	var props tiled.Properties
	if m.Properties != nil {
		props = *m.Properties
	}

	id := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	l := &Level{
		ID:    id,
		Name:  props.GetString("name"),
		Next:  props.GetString("next"),
		Scale: props.GetFloat("scale"),
		Width: m.Width,
		Depth: m.Height,
		tops:  make([]float64, m.Width*m.Height),
		holes: make([]bool, m.Width*m.Height),
	}
	if l.Name == "" {
		l.Name = id
	}
	if l.Scale <= 0 {
		l.Scale = defaultScale
	}

	if err := l.parseTerrain(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	// Pixel to world conversion for object coordinates.
	px := l.Scale / float64(m.TileWidth)
	pz := l.Scale / float64(m.TileHeight)
	spawnFound, respawnFound := false, false

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			x0, z0 := o.X*px, o.Y*pz
			x1, z1 := (o.X+o.Width)*px, (o.Y+o.Height)*pz

			switch og.Name {
			case "Walls":
				minY := o.Properties.GetFloat("minY")
				maxY := orDefault(o.Properties.GetFloat("maxY"), minY+defaultWallHeight)
				l.Walls = append(l.Walls, Block{
					Min: mgl64.Vec3{x0, minY, z0},
					Max: mgl64.Vec3{x1, maxY, z1},
				})
			case "GrapplePoints":
				size := orDefault(o.Properties.GetFloat("size"), defaultGrappleSize)
				y := o.Properties.GetFloat("y")
				cx, cz := (x0+x1)/2, (z0+z1)/2
				l.GrapplePoints = append(l.GrapplePoints, Block{
					Min: mgl64.Vec3{cx - size/2, y - size/2, cz - size/2},
					Max: mgl64.Vec3{cx + size/2, y + size/2, cz + size/2},
				})
			case "PlayerSpawn":
				l.Spawn = l.standingPoint(x0, z0, o.Properties.GetFloat("y"))
				l.SpawnYaw = mgl64.DegToRad(o.Properties.GetFloat("yaw"))
				spawnFound = true
			case "Respawn":
				l.Respawn = l.standingPoint(x0, z0, o.Properties.GetFloat("y"))
				respawnFound = true
			case "FinishLine":
				minY := o.Properties.GetFloat("minY")
				maxY := orDefault(o.Properties.GetFloat("maxY"), minY+defaultFinishHeight)
				l.FinishLines = append(l.FinishLines, Block{
					Min: mgl64.Vec3{x0, minY, z0},
					Max: mgl64.Vec3{x1, maxY, z1},
				})
			case "MovingPlatforms":
				top := o.Properties.GetFloat("y")
				thick := orDefault(o.Properties.GetFloat("thickness"), defaultPlatformThick)
				l.Platforms = append(l.Platforms, Platform{
					Block: Block{
						Min: mgl64.Vec3{x0, top - thick, z0},
						Max: mgl64.Vec3{x1, top, z1},
					},
					Offset: mgl64.Vec3{
						o.Properties.GetFloat("dx"),
						o.Properties.GetFloat("dy"),
						o.Properties.GetFloat("dz"),
					},
					Duration: orDefault(o.Properties.GetFloat("duration"), defaultPlatformTime),
				})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	if !respawnFound {
		l.Respawn = l.Spawn
	}
	return l, nil
}

// LoadAll loads every .tmx file in dir, ordered by file name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		l, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func (l *Level) parseTerrain(m *tiled.Map) error {
	var layer *tiled.Layer
	for _, candidate := range m.Layers {
		if candidate.Name == "terrain" {
			layer = candidate
			break
		}
	}
	if layer == nil {
		return fmt.Errorf("no terrain layer")
	}

	for z := 0; z < m.Height; z++ {
		for x := 0; x < m.Width; x++ {
			i := z*m.Width + x
			tile := layer.Tiles[i]
			if tile.IsNil() {
				l.holes[i] = true
				continue
			}
			var top float64
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				top = tilesetTile.Properties.GetFloat("top")
			}
			l.tops[i] = top

			x0, z0 := float64(x)*l.Scale, float64(z)*l.Scale
			l.Terrain = append(l.Terrain, Block{
				Min: mgl64.Vec3{x0, top - ColumnDepth, z0},
				Max: mgl64.Vec3{x0 + l.Scale, top, z0 + l.Scale},
			})
		}
	}
	return nil
}

// standingPoint lifts a point onto the terrain below it when y is lower.
func (l *Level) standingPoint(x, z, y float64) mgl64.Vec3 {
	if top, ok := l.TopAt(x, z); ok {
		y = math.Max(y, top)
	}
	return mgl64.Vec3{x, y, z}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
