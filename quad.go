package qstore

// Quad is a (subject, predicate, object, graph) tuple of NodeIds. A
// Triple is a Quad in the default graph.
type Quad struct {
	Subject   NodeID
	Predicate NodeID
	Object    NodeID
	Graph     NodeID
}
