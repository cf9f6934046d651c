// Package search finds catalog plays by name.
//
// The index is a lazy traversal over the already-indexed catalog: there is
// no separate inverted index. Hits are yielded in catalog declaration order
// and traversal stops at the limit, so short queries against a large
// catalog are cheap as long as the caller bounds the result.
//
//	idx := search.New(cat)
//	for hit := range idx.Search("mesh", search.Options{Side: domain.SideOffense, Limit: 10}) {
//	    fmt.Println(hit.PlaybookName, hit.FormationName, hit.Name)
//	}
package search
