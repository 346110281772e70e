// Package specfile reads naming specs from YAML documents.
//
// Example document:
//
//	ring: QQ
//	max_names: 1000
//	unique: true
//	specs:
//	  - z                            # textual form, see naming.Parse
//	  - "x# => 1:2, 1:3"
//	  - single: t
//	  - names: [[a, b], [c, d]]      # or a flat list, optionally with dims
//	  - prefix: u                    # u1, u2, u3
//	    count: 3
//	  - pattern: "y@"
//	    axes:
//	      - range: [0, 2]            # [start, stop] or [start, step, stop]
//	      - ints: [-1, 3, 10]
//	      - chars: ab
//	      - tokens: [p, q]
//	      - labels: {n: 3, scheme: excel}
//	      - "1:4"                    # textual axis
//
// Load reads one file, LoadAll reads many concurrently. Every error wraps
// ErrDocument.
package specfile
