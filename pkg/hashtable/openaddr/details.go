package openaddr

/*
	This hash map implementation uses open addressing: a single flat array of
	slots where every slot is in one of three states, empty, occupied, or dead
	(a tombstone). A probe sequence h(k, i) for attempts i = 0, 1, 2, ... walks
	candidate slots until it finds what it is looking for. Three probe
	sequences are supported:

	1) Linear:    h(k, i) = (h'(k) + i) mod m
	   Visits every slot for any m. Suffers from primary clustering.
	2) Quadratic: h(k, i) = (h'(k) + i(i+1)/2) mod m
	   The triangular-number offset is the classic c1 = c2 = 1/2 choice, which
	   visits every slot exactly once when m is a power of two. The table
	   therefore keeps quadratic capacities aligned to powers of two.
	3) Double:    h(k, i) = (h1(k) + i*h2(k)) mod m
	   The step hash is normalized into [1, m-1]; the table keeps double
	   capacities prime so the step is always coprime with m and the sequence
	   visits every slot.

	Deletion marks the slot dead rather than empty, because an empty slot
	terminates every probe sequence that crosses it: erasing in place would cut
	probe chains for keys inserted past the deleted one. A dead slot never
	terminates a search; it is reused by insertion and purged wholesale by a
	rehash once tombstones outnumber half the table.
*/
