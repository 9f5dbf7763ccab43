package view

import "github.com/go-gl/mathgl/mgl32"

// CubeEdges indexes the 12 edges of the cube returned by CubeCorners.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CubeFaces lists the corners of each face counter-clockwise when seen from outside.
var CubeFaces = [6][4]int{
	{4, 5, 6, 7}, // front  +z
	{1, 0, 3, 2}, // back   -z
	{5, 1, 2, 6}, // right  +x
	{0, 4, 7, 3}, // left   -x
	{7, 6, 2, 3}, // top    +y
	{0, 1, 5, 4}, // bottom -y
}

// CubeCorners returns the corners of an axis-aligned cube centred on the origin with the given edge length.
func CubeCorners(edge float32) [8]mgl32.Vec3 {
	h := edge / 2
	return [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
}

// TransformCorners applies m to every corner.
func TransformCorners(corners [8]mgl32.Vec3, m mgl32.Mat4) [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i, c := range corners {
		out[i] = mgl32.TransformCoordinate(c, m)
	}
	return out
}
