package meshes

// Interleaved layout: position xyz, normal xyz, uv.

// Unit cube centred on the origin, one quad per face
var cubeVertices = []float32{
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 1,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
}

// 20x20 ground quad at y = -0.5
var planeVertices = []float32{
	-10, -0.5, 10, 0, 0, -1, 0, 0,
	10, -0.5, 10, 0, 0, -1, 1, 0,
	10, -0.5, -10, 0, 0, -1, 1, 1,
	10, -0.5, -10, 0, 0, 1, 1, 1,
	-10, -0.5, -10, 0, 0, 1, 1, 0,
	-10, -0.5, 10, 0, 0, 1, 0, 0,
}

// Square pyramid, base at y = 0, apex at y = 1
var pyramidVertices = []float32{
	0, 1, 0, 0, 0, -1, 0, 0,
	-0.5, 0, 0.5, 0, 0, -1, 1, 0,
	0.5, 0, 0.5, 0, 0, -1, 1, 1,
	0, 1, 0, 0, 0, -1, 1, 1,
	-0.5, 0, 0.5, 0, 0, -1, 0, 1,
	-0.5, 0, -0.5, 0, 0, -1, 0, 0,
	0, 1, 0, 0, 0, -1, 0, 0,
	-0.5, 0, -0.5, 0, 0, -1, 1, 0,
	0.5, 0, -0.5, 0, 0, -1, 1, 1,
	0, 1, 0, 0, 0, -1, 0, 1,
	0.5, 0, -0.5, 0, 0, -1, 0, 0,
	0.5, 0, 0.5, 0, 0, -1, 0, 0,
	-0.5, 0, 0.5, 0, 0, -1, 1, 0,
	-0.5, 0, -0.5, 0, 0, -1, 1, 1,
	0.5, 0, 0.5, 0, 0, -1, 0, 1,
	0.5, 0, 0.5, 0, 0, -1, 0, 0,
	-0.5, 0, -0.5, 0, 0, -1, 1, 0,
	0.5, 0, -0.5, 0, 0, -1, 1, 1,
}

// Flat 6x2x0.5 slab
var padVertices = []float32{
	-2, 0, 1, 0, 0, -1, 0, 0,
	4, 0, 1, 0, 0, -1, 1, 0,
	4, 0, -1, 0, 0, -1, 1, 1,
	4, 0, -1, 0, 0, -1, 1, 1,
	-2, 0, -1, 0, 0, -1, 0, 1,
	-2, 0, 1, 0, 0, -1, 0, 0,
	-2, 0.5, 1, 0, 0, 0, 0, 0,
	4, 0.5, 1, 0, 0, 0, 1, 0,
	4, 0.5, -1, 0, 0, 0, 1, 1,
	4, 0.5, -1, 0, 0, 0, 1, 1,
	-2, 0.5, -1, 0, 0, 0, 0, 1,
	-2, 0.5, 1, 0, 0, 0, 0, 0,
	-2, 0, 1, 0, 0, -1, 0, 0,
	-2, 0, -1, 0, 0, -1, 1, 0,
	-2, 0.5, 1, 0, 0, -1, 1, 1,
	-2, 0.5, 1, 0, 0, -1, 1, 1,
	-2, 0, -1, 0, 0, -1, 0, 1,
	-2, 0.5, -1, 0, 0, -1, 0, 0,
	4, 0, 1, 0, 0, -1, 1, 0,
	4, 0, -1, 0, 0, -1, 1, 1,
	4, 0.5, 1, 0, 0, -1, 1, 1,
	4, 0.5, 1, 0, 0, -1, 1, 1,
	4, 0, -1, 0, 0, -1, 0, 1,
	4, 0.5, -1, 0, 0, -1, 0, 0,
	-2, 0, -1, 0, 0, -1, 0, 0,
	4, 0, -1, 0, 0, -1, 1, 0,
	4, 0.5, -1, 0, 0, -1, 1, 1,
	4, 0.5, -1, 0, 0, -1, 1, 1,
	-2, 0, -1, 0, 0, -1, 0, 1,
	-2, 0.5, -1, 0, 0, -1, 0, 0,
	-2, 0, 1, 0, 1, 0, 0, 0,
	4, 0, 1, 0, 1, 0, 1, 0,
	4, 0.5, 1, 0, 1, 0, 1, 1,
	4, 0.5, 1, 0, 1, 0, 1, 1,
	-2, 0, 1, 0, 1, 0, 0, 1,
	-2, 0.5, 1, 0, 1, 0, 0, 0,
}

// Thin 0.2x1.5x2 bar
var prongVertices = []float32{
	-0.1, 1.5, 1, 0, 0, -1, 0, 0,
	0.1, 1.5, 1, 0, 0, -1, 1, 0,
	-0.1, 0, 1, 0, 0, -1, 1, 1,
	-0.1, 0, 1, 0, 0, -1, 1, 1,
	0.1, 0, 1, 0, 0, -1, 0, 1,
	0.1, 1.5, 1, 0, 0, -1, 0, 0,
	-0.1, 1.5, -1, 0, 0, 1, 0, 0,
	0.1, 1.5, -1, 0, 0, 1, 1, 0,
	-0.1, 0, -1, 0, 0, 1, 1, 1,
	-0.1, 0, -1, 0, 0, 1, 1, 1,
	0.1, 0, -1, 0, 0, 1, 0, 1,
	0.1, 1.5, -1, 0, 0, 1, 0, 0,
	-0.1, 1.5, 1, -1, 0, 0, 1, 0,
	-0.1, 0, 1, -1, 0, 0, 1, 1,
	-0.1, 0, -1, -1, 0, 0, 0, 1,
	-0.1, 0, -1, -1, 0, 0, 0, 1,
	-0.1, 1.5, -1, -1, 0, 0, 0, 0,
	-0.1, 1.5, 1, -1, 0, 0, 1, 0,
	0.1, 1.5, 1, 1, 0, 0, 1, 0,
	0.1, 0, 1, 1, 0, 0, 1, 1,
	0.1, 0, -1, 1, 0, 0, 0, 1,
	0.1, 0, -1, 1, 0, 0, 0, 1,
	0.1, 1.5, -1, 1, 0, 0, 0, 0,
	0.1, 1.5, 1, 1, 0, 0, 1, 0,
	-0.1, 0, 1, 0, -1, 0, 0, 1,
	0.1, 0, 1, 0, -1, 0, 1, 1,
	0.1, 0, -1, 0, -1, 0, 1, 0,
	0.1, 0, -1, 0, -1, 0, 1, 0,
	-0.1, 0, -1, 0, -1, 0, 0, 0,
	-0.1, 0, 1, 0, -1, 0, 0, 1,
	-0.1, 1.5, 1, 0, 1, 0, 0, 1,
	0.1, 1.5, 1, 0, 1, 0, 1, 1,
	0.1, 1.5, -1, 0, 1, 0, 1, 0,
	0.1, 1.5, -1, 0, 1, 0, 1, 0,
	-0.1, 1.5, -1, 0, 1, 0, 0, 0,
	-0.1, 1.5, 1, 0, 1, 0, 0, 1,
}
