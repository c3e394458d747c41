package visibility

import "jigmesh"

// Data is the payload visibility attaches to each vert's opaque data slot
// (spec.md §4.5, "Visibility cache"; §4.8 collaborator interface, "Vert
// payload"). Grounded on original_source/Jig/EdgeMeshVisibility.h's Data
// subclass of EdgeMesh::Data.
type Data struct {
	Visible []jigmesh.VertHandle
}

// GetData returns the visibility payload attached to v, or nil if none has
// been computed (or the slot holds something else).
func GetData(m *jigmesh.Mesh, v jigmesh.VertHandle) *Data {
	d, _ := m.Data(v).(*Data)
	return d
}

// Update recomputes every vert's visible list by invoking From at the
// vert's own position, and stores the result as that vert's data payload,
// replacing whatever was there (spec.md §4.5: "recompute each vert's
// visible list... store as an attached payload on the vert"). Not
// incremental — roughly O(V*(V+E)) worst case, matching
// EdgeMeshVisibility::Update in original_source/Jig/EdgeMeshVisibility.cpp.
func Update(m *jigmesh.Mesh) {
	for _, v := range m.Verts() {
		visible := From(m, m.Pos(v))
		m.SetData(v, &Data{Visible: visible})
	}
}
