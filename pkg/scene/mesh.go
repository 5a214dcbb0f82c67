package scene

// VertexStride is the number of floats per mesh vertex: position xyz, uv
const VertexStride = 5

// QuadIndices draws a four-vertex quad as two triangles
var QuadIndices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// MeshID names one of the static quads
type MeshID int

const (
	MeshBird MeshID = iota
	MeshBackground
	MeshPipe
	MeshScreen
)

// MeshIDs lists every mesh in upload order
var MeshIDs = []MeshID{MeshBird, MeshBackground, MeshPipe, MeshScreen}

func (m MeshID) String() string {
	switch m {
	case MeshBird:
		return "bird"
	case MeshBackground:
		return "background"
	case MeshPipe:
		return "pipe"
	case MeshScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Mesh is an indexed vertex list in world units
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Quad builds a rectangle at depth z with the full texture mapped onto it.
// Vertex order is top-right, bottom-right, bottom-left, top-left.
func Quad(x0, x1, y0, y1, z float32) Mesh {
	return Mesh{
		Vertices: []float32{
			// positions   // texture coords
			x1, y1, z, 1.0, 1.0,
			x1, y0, z, 1.0, 0.0,
			x0, y0, z, 0.0, 0.0,
			x0, y1, z, 0.0, 1.0,
		},
		Indices: QuadIndices,
	}
}

// Meshes returns the quads every sprite is drawn with
func Meshes() map[MeshID]Mesh {
	return map[MeshID]Mesh{
		MeshBird:       Quad(-0.06, 0.06, -0.1, 0.1, 0),
		MeshBackground: Quad(-1, 3, -1, 1, -1),
		MeshPipe:       Quad(-0.1, 0.1, -0.5, 0.5, 0.7),
		MeshScreen:     Quad(-1, 1, -1, 1, -1),
	}
}

// Bounds returns the extent of the mesh in the xy plane
func (m Mesh) Bounds() (minX, minY, maxX, maxY float32) {
	if len(m.Vertices) < VertexStride {
		return 0, 0, 0, 0
	}
	minX, minY = m.Vertices[0], m.Vertices[1]
	maxX, maxY = minX, minY
	for i := 0; i+VertexStride <= len(m.Vertices); i += VertexStride {
		x, y := m.Vertices[i], m.Vertices[i+1]
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return minX, minY, maxX, maxY
}
