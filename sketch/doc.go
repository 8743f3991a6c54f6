// Package sketch models the "spread" visualization headlessly: a
// configurable canvas geometry and a Tracker that samples a position
// generator once per tick and keeps the running statistics shown in the
// sketch's status line.
//
// The Tracker owns the growing PositionSet and guards it with a
// sync.RWMutex, so a render loop may read snapshots while a ticker
// advances the sequence.
//
//	tr := sketch.NewTracker()
//	for i := 0; i < 100; i++ {
//	  if _, err := tr.Step(); err != nil { ... }
//	}
//	fmt.Println(tr.Label())
package sketch
