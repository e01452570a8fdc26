package digraph

// ToMatrix assigns each vertex of m a stable integer identifier in
// insertion order (0..n-1) and emits the equivalent Matrix, together
// with the bijection label->id and its inverse id->label. The returned
// Matrix preserves every edge of m exactly once.
func ToMatrix[V comparable](m *Map[V]) (mat *Matrix, toID map[V]int, toLabel []V) {
	labels := m.Vertices()
	toID = make(map[V]int, len(labels))
	toLabel = make([]V, len(labels))
	for i, v := range labels {
		toID[v] = i
		toLabel[i] = v
	}
	mat = NewMatrix(len(labels))
	for _, e := range m.Edges() {
		_ = mat.AddEdge(toID[e[0]], toID[e[1]])
	}
	return mat, toID, toLabel
}
