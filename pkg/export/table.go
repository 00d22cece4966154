package export

// Table defines tabular export content shared by every renderer.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}
