package config_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/config"
)

var _ = Describe("ConfigurationOptions", func() {
	Context("DebugMap", func() {
		It("should never expose the password", func() {
			opts := config.NewConfigurationOptionsWithOptionsAndDefaults(
				config.WithSchedulerDBPassword("s3cret"),
			)

			debugMap := opts.DebugMap()

			Expect(debugMap).To(HaveKey("SchedulerDBPassword"))
			Expect(fmt.Sprint(debugMap)).NotTo(ContainSubstring("s3cret"))
			Expect(fmt.Sprint(debugMap["SchedulerDBServer"])).To(ContainSubstring("localhost"))
		})
	})

	Context("SchedulerTLS", func() {
		DescribeTable("policy derived from the CA file",
			func(caFile string, expected config.SchedulerTLS) {
				opts := config.NewConfigurationOptionsWithOptionsAndDefaults(config.WithSchedulerCAFile(caFile))
				Expect(opts.SchedulerTLS()).To(Equal(expected))
			},
			Entry("unset uses system roots", "", config.SchedulerTLS{SSLMode: config.SSLModeVerifyCA}),
			Entry("None uses system roots", "None", config.SchedulerTLS{SSLMode: config.SSLModeVerifyCA}),
			Entry("IGNORE skips verification", "IGNORE", config.SchedulerTLS{SSLMode: config.SSLModeRequire}),
			Entry("path is used as root", "/etc/ssl/ca.pem",
				config.SchedulerTLS{SSLMode: config.SSLModeVerifyCA, RootCert: "/etc/ssl/ca.pem"}),
		)
	})

	Context("SchedulerDSN", func() {
		It("should render the defaults without a password", func() {
			opts := config.NewConfigurationOptionsWithOptionsAndDefaults()

			Expect(opts.SchedulerDSN()).To(Equal(
				"host=localhost port=5432 user=scheduler dbname=atlasmnsdb sslmode=verify-ca"))
		})

		It("should quote values with spaces and quotes", func() {
			opts := config.NewConfigurationOptionsWithOptionsAndDefaults(
				config.WithSchedulerDBPassword(`it's a secret`),
				config.WithSchedulerCAFile("/etc/ssl/mns ca.pem"),
			)

			Expect(opts.SchedulerDSN()).To(Equal(
				`host=localhost port=5432 user=scheduler password='it\'s a secret' dbname=atlasmnsdb ` +
					`sslmode=verify-ca sslrootcert='/etc/ssl/mns ca.pem'`))
		})
	})

	Context("RedactedDSN", func() {
		It("should mask the password", func() {
			opts := config.NewConfigurationOptionsWithOptionsAndDefaults(config.WithSchedulerDBPassword("s3cret"))

			dsn := opts.RedactedDSN()

			Expect(dsn).NotTo(ContainSubstring("s3cret"))
			Expect(dsn).To(Equal(
				"host=localhost port=5432 user=scheduler password=******** dbname=atlasmnsdb sslmode=verify-ca"))
		})

		It("should match SchedulerDSN without a password", func() {
			opts := config.NewConfigurationOptionsWithOptionsAndDefaults()

			Expect(opts.RedactedDSN()).To(Equal(opts.SchedulerDSN()))
		})
	})
})
