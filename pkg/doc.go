// Package pkg provides the libraries behind the whiteboard engine.
//
// # Overview
//
// A board is an ordered list of elements on an infinite canvas. The pkg
// directory is organized into three areas:
//
//  1. Canvas - [geom], [element], [board], [viewport] and [controller] hold
//     the geometry, the element model and the pointer-driven interaction
//     state machine.
//  2. Output - [io] persists boards as JSON, [render] turns a board into
//     draw primitives and [render/sink] writes SVG, PNG or PDF.
//  3. Infrastructure - [store], [cache], [icon], [export], [client],
//     [session], [httputil] and [observability] keep boards, cache rendered
//     output and talk to remote servers.
//
// # Architecture
//
// The typical data flow:
//
//	pointer events / board JSON
//	         ↓
//	    [controller] (select, drag, resize, snap, paste)
//	         ↓
//	    [board] (ordered elements)
//	         ↓
//	    [render] (scene of primitives)
//	         ↓
//	    [render/sink] (SVG/PNG/PDF)
//
// # Quick Start
//
//	doc, err := io.ImportJSON("plan.json")
//	if err != nil {
//	    return err
//	}
//	exp := export.New(export.DefaultSettings())
//	scene, err := exp.Scene(ctx, doc)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(scene)
package pkg
