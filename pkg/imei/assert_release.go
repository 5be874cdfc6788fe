//go:build !imeidebug

package imei

const assertions = false
