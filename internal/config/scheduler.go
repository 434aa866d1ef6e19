package config

import (
	"strconv"
	"strings"
)

// Special scheduler_cafile values.
const (
	CAFileSystemRoots = "None"
	CAFileIgnore      = "IGNORE"
)

// SSL modes understood by libpq.
const (
	SSLModeRequire  = "require"
	SSLModeVerifyCA = "verify-ca"
)

// SchedulerTLS describes how the engine must verify the scheduler database.
type SchedulerTLS struct {
	SSLMode  string
	RootCert string
}

// SchedulerTLS derives the TLS policy from SchedulerCAFile:
//
//	""/"None" → verify-ca against the system roots
//	"IGNORE"  → require, certificate not checked
//	<path>    → verify-ca against <path>
func (c ConfigurationOptions) SchedulerTLS() SchedulerTLS {
	switch c.SchedulerCAFile {
	case "", CAFileSystemRoots:
		return SchedulerTLS{SSLMode: SSLModeVerifyCA}
	case CAFileIgnore:
		return SchedulerTLS{SSLMode: SSLModeRequire}
	default:
		return SchedulerTLS{SSLMode: SSLModeVerifyCA, RootCert: c.SchedulerCAFile}
	}
}

const redactedPassword = "********"

// SchedulerDSN renders the scheduler database parameters as a libpq
// keyword/value connection string. The password is left out when empty.
func (c ConfigurationOptions) SchedulerDSN() string {
	return c.schedulerDSN(c.SchedulerDBPassword)
}

// RedactedDSN is SchedulerDSN with the password masked, for logging.
func (c ConfigurationOptions) RedactedDSN() string {
	if c.SchedulerDBPassword == "" {
		return c.schedulerDSN("")
	}
	return c.schedulerDSN(redactedPassword)
}

func (c ConfigurationOptions) schedulerDSN(password string) string {
	tls := c.SchedulerTLS()
	params := [][2]string{
		{"host", c.SchedulerDBServer},
		{"port", strconv.Itoa(int(c.SchedulerDBPort))},
		{"user", c.SchedulerDBUser},
	}
	if password != "" {
		params = append(params, [2]string{"password", password})
	}
	params = append(params,
		[2]string{"dbname", c.SchedulerDatabase},
		[2]string{"sslmode", tls.SSLMode},
	)
	if tls.RootCert != "" {
		params = append(params, [2]string{"sslrootcert", tls.RootCert})
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p[0]+"="+quoteDSNValue(p[1]))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue single-quotes values that are empty or contain spaces, quotes
// or backslashes, escaping the latter two.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\\t\n") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
