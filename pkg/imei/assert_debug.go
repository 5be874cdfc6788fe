//go:build imeidebug

package imei

// assertions enables internal consistency checks. Build with -tags imeidebug.
const assertions = true
