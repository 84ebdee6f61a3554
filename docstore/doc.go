/*
Package docstore provides a schemaless document store on top of bbolt.

# Model

Documents are JSON blobs grouped into named collections (bbolt buckets) and
keyed by caller-supplied IDs:

	store, err := docstore.Open("data/petition.db", "signatures", "comments")
	...
	err = docstore.Put(store, "signatures", sig.ID, sig)
	sig, found, err := docstore.Get[models.Signature](store, "signatures", id)

# Queries

The only query primitive is Select, a predicate scan over a whole
collection:

	dupes, err := docstore.Select(store, "signatures", func(s models.Signature) bool {
		return s.Roll == roll
	})

All and Count are conveniences built on the same scan.

# Consistency

Individual Put/Get calls are atomic, but there are no uniqueness
constraints, no conditional writes, and no transactions spanning multiple
calls. Multi-step protocols built on this package (duplicate checks,
read-increment-write counters) are check-then-act sequences and stay racy
under concurrent callers. That consistency surface is intentional; callers
own the decision to tolerate it.
*/
package docstore
