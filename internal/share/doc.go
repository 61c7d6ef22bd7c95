// Package share turns folders into password-protected share links and back.
//
// A link has the form
//
//	<viewer>/share.html#data=<base64url(JSON(envelope))>
//
// where envelope is produced by the crypto package. The fragment never
// reaches a server; the viewer decrypts it locally with the password the
// recipient types in.
package share
