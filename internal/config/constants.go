package config

// DefaultDatabaseName is the base name of the database file; the storage
// layer appends the fixed ".sdb" extension.
const DefaultDatabaseName = "filmbase"

// Contract values relied on by the web layer that fronts this data layer.
// They live here so both sides agree on the deployment layout.
const (
	// APIBasePath prefixes every API route served in front of this layer.
	APIBasePath = "/api"

	// Credentials travel as two distinct request headers.
	LoginHeader    = "User-Login"
	PasswordHeader = "User-Password"

	// Static asset roots.
	WWWPath       = "./www"
	IndexHTMLPath = WWWPath + "/index.html"
	JSParentPath  = WWWPath + "/js"
	CSSParentPath = WWWPath + "/css"
	TemplatePath  = WWWPath + "/template"
)
