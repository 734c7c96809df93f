// Package backup moves TOTP credentials in and out of YAML archives.
//
// An archive is a single document with an entries list. Each entry holds a
// credential in one of two forms: a full otpauth URI, or the legacy
// settings/secret pair that predates key URIs:
//
//	entries:
//	  - uri: otpauth://totp/Example:alice?secret=JBSWY3DP&issuer=Example
//	  - secret: JBSWY3DP
//	    settings: ["60", "8", ""]
//
// Import accepts both forms and returns fully validated keyuri.Key values;
// legacy entries are migrated on the way in. Export writes URI-form entries
// only, so exporting is also how an old archive is upgraded for good.
//
// Imports are all-or-nothing. The first invalid entry stops the run and the
// error names its position, which keeps a damaged archive from silently
// losing credentials:
//
//	keys, err := backup.Import(file)
//	if err != nil {
//		// e.g. "entry 2: missing secret"
//	}
//
// Unknown fields in an archive are rejected rather than ignored. A typo in a
// field name means the credential data it carried would otherwise be dropped.
package backup
