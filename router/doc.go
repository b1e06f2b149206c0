// Package router connects source DNC mergers to target HICANN chips over
// an l1graph.Graph, using either of two interchangeable path-finding
// algorithms (a directional Backbone walk, or a weighted Dijkstra search
// generalizing the teacher's dijkstra package), sharing a common request
// queue and a common vertex-path-to-L1Route lowering step.
package router
