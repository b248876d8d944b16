/*
Package ntree parses and prints ntree, a small language of named, nested
values. Every value has a name, and a value is one of a quoted string, the
literal null, or a brace-delimited array of further named values:

	shape = {
		type = "tetrahedron"
		vertices = {
			point = { x = "1" y = "0" z = "0" }
			point = { x = "0" y = "1" z = "0" }
		}
		color = { r = "0xFF", g = "0x00", b = "0x80" }
	}

Names start with a letter or underscore and end at a space or '='. Strings
recognize the escapes \n, \t, \r, \" and \\ and cannot span lines. Commas
between array elements are optional and arrays cannot be empty.

Load reads one top-level node into a Document, numbering the nodes 1, 2, 3...
in the order they appear. Print renders a Document as one record per node
holding the node's id, its parent's id, its name and its value:

	doc, err := ntree.Load(r)
	if err != nil {
		// err is a *ntree.ParsingError
	}
	if err := ntree.Print(doc, os.Stdout); err != nil {
		// write error
	}

For the tree above, Print writes:

	1,0,shape,{type vertices color}
	  2,1,type,tetrahedron
	  3,1,vertices,{point point}
	    4,3,point,{x y z}
	      5,4,x,1
	...

The ast package holds the node model. Functional options such as IndentStep,
MaxDepth and DisallowTrailingData adjust both operations.
*/
package ntree
