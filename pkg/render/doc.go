// Package render converts scenes to Graphviz DOT and renders image previews.
//
// Scenes carry explicit geometry, so rendering uses the neato engine with
// pinned positions instead of letting Graphviz lay the graph out. Container
// nodes are drawn as filled boxes behind their members; edges connect node
// centers.
package render
