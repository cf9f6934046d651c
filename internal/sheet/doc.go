// Package sheet shapes playsheet entries for display: situation filters,
// sort orders, formation grouping, summary stats and user-written
// expression filters such as
//
//	rating >= 4 && "money" in tags
package sheet
