// Package walls turns a graph into a spanning forest by repeatedly locating a
// circuit and removing its closing edge ("building a wall").
//
// Loop
//
//	for {
//	    res := circuit.Find(g)
//	    if res == nil { break }
//	    g.Disconnect(res.Edge)
//	}
//
// Only edges that a Locator has proved to lie on a cycle are removed, so the
// node count and the component count never change while the edge count drops
// by one per Step. The Euler characteristic χ = ε − υ + κ therefore falls by
// exactly one per removal and the loop stops at χ = 0. WithEulerCheck verifies
// this after every removal and fails with ErrInvariant otherwise.
//
// A second Run over the same graph removes nothing.
//
// The Locator used for each search comes from a factory (WithLocator); the
// default is a depth-first locator with shuffled edge order drawing from the
// builder's random stream.
package walls
