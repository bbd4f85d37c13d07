// Package scene describes a whole plot in a YAML (or JSON) document: an
// optional mapped grid plus any number of point sets, drawn in file order
// onto one figure.
//
//	title: sin(z)
//	function: sin(z)
//	x: [-4, 4, 1]
//	y: [-4, 4, 1]
//	reim: im
//	points:
//	  - name: top
//	    color: red
//	    segment: {from: "1+2i", to: "2+2i", n: 5}
//	  - name: top_t
//	    color: red
//	    transform: true
//	    segment: {from: "1+2i", to: "2+2i", n: 5}
//	output: {path: sin.png, width: 600, height: 600}
//
// Parse rejects unknown keys. Build compiles the function with zexpr and
// delegates drawing to zplot.
package scene
