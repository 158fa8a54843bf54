// Package slug turns Turkish department names into the URL path segments used by
// universitego.com ranking pages.
//
// Lowercasing follows Turkish casing rules (I→ı, İ→i) before a fixed replacement
// table maps the remaining Turkish letters to ASCII. Characters outside that table
// are left as they are; no further URL escaping happens here.
package slug
