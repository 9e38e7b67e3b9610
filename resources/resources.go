// Package resources embeds the stock locale catalogs.
package resources

import "embed"

//go:embed locales/*.yml
var FS embed.FS
