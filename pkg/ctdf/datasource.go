package ctdf

// DataSource records which entry point produced an archived record
type DataSource struct {
	Provider string `groups:"internal"`
	Version  string `groups:"internal"`
}
