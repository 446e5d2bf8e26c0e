// Package geometry holds the static vertex, normal and index buffers for the cube.
package geometry

import "fmt"

// Mesh is an indexed triangle list with one normal per vertex.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint16
}

// Validate checks buffer shapes the way a program link would.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("geometry: empty position buffer")
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("geometry: %d normals for %d positions", len(m.Normals), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("geometry: index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("geometry: index %d at %d out of range", idx, i)
		}
	}
	return nil
}

// Cube returns the unit cube spanning [-1, 1] on every axis.
// Each face has its own four corners so normals stay flat.
func Cube() Mesh {
	lbf := [3]float32{-1, -1, 1}
	rbf := [3]float32{1, -1, 1}
	rtf := [3]float32{1, 1, 1}
	ltf := [3]float32{-1, 1, 1}
	lbb := [3]float32{-1, -1, -1}
	rbb := [3]float32{1, -1, -1}
	rtb := [3]float32{1, 1, -1}
	ltb := [3]float32{-1, 1, -1}

	faces := [6][4][3]float32{
		{lbf, rbf, rtf, ltf}, // front
		{lbb, ltb, rtb, rbb}, // back
		{ltb, ltf, rtf, rtb}, // top
		{lbb, rbb, rbf, lbf}, // bottom
		{rbb, rtb, rtf, rbf}, // right
		{lbb, lbf, ltf, ltb}, // left
	}
	normals := [6][3]float32{
		{0, 0, 1},
		{0, 0, -1},
		{0, 1, 0},
		{0, -1, 0},
		{1, 0, 0},
		{-1, 0, 0},
	}
	face := [6]uint16{0, 1, 2, 0, 2, 3}

	m := Mesh{
		Positions: make([][3]float32, 0, 24),
		Normals:   make([][3]float32, 0, 24),
		Indices:   make([]uint16, 0, 36),
	}
	for f := range faces {
		for _, corner := range faces[f] {
			m.Positions = append(m.Positions, corner)
			m.Normals = append(m.Normals, normals[f])
		}
		for _, i := range face {
			m.Indices = append(m.Indices, uint16(4*f)+i)
		}
	}
	return m
}
