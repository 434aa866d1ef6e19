package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/config"
	srvErrors "github.com/dreibh/atlasmns-trace-TESTONLY/pkg/errors"
)

var _ = Describe("ParseCommandLine", func() {
	// Given no arguments at all
	// When the command line is parsed
	// Then the layer should be empty and no config file requested
	It("should produce an empty layer without arguments", func() {
		cl, err := config.ParseCommandLine([]string{})

		Expect(err).NotTo(HaveOccurred())
		Expect(cl.Layer.Source).To(Equal(config.SourceCommandLine))
		Expect(cl.Layer.Len()).To(BeZero())
		Expect(cl.HelpRequested).To(BeFalse())
		Expect(cl.HasConfigFile).To(BeFalse())
	})

	It("should take only the flags that were typed", func() {
		cl, err := config.ParseCommandLine([]string{"--scheduler_dbport=6000", "--scheduler_dbuser", "mns"})

		Expect(err).NotTo(HaveOccurred())
		Expect(cl.Layer.Keys()).To(Equal([]string{config.KeySchedulerDBPort, config.KeySchedulerDBUser}))
		v, _ := cl.Layer.Get(config.KeySchedulerDBPort)
		Expect(v).To(Equal(uint16(6000)))
		v, _ = cl.Layer.Get(config.KeySchedulerDBUser)
		Expect(v).To(Equal("mns"))
	})

	// Given a flag typed with exactly its default value
	// When the command line is parsed
	// Then the value should still count as explicitly supplied
	It("should record a typed value equal to the default", func() {
		cl, err := config.ParseCommandLine([]string{"--scheduler_dbserver=localhost"})

		Expect(err).NotTo(HaveOccurred())
		v, ok := cl.Layer.Get(config.KeySchedulerDBServer)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("localhost"))
	})

	It("should parse the log level", func() {
		cl, err := config.ParseCommandLine([]string{"--loglevel=0"})

		Expect(err).NotTo(HaveOccurred())
		v, _ := cl.Layer.Get(config.KeyLogLevel)
		Expect(v).To(Equal(uint(0)))
	})

	Context("config file", func() {
		It("should accept the path positionally", func() {
			cl, err := config.ParseCommandLine([]string{"conf.txt"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HasConfigFile).To(BeTrue())
			Expect(cl.ConfigFile).To(Equal("conf.txt"))
			v, _ := cl.Layer.Get(config.KeyConfigFile)
			Expect(v).To(Equal("conf.txt"))
		})

		It("should accept the path with -c", func() {
			cl, err := config.ParseCommandLine([]string{"-c", "conf.txt"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.ConfigFile).To(Equal("conf.txt"))
		})

		It("should accept the path with --config-file", func() {
			cl, err := config.ParseCommandLine([]string{"--config-file=conf.txt", "--loglevel=1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.ConfigFile).To(Equal("conf.txt"))
		})

		It("should accept the positional path after flags", func() {
			cl, err := config.ParseCommandLine([]string{"--loglevel=0", "conf.txt"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.ConfigFile).To(Equal("conf.txt"))
		})

		It("should reject a path given twice", func() {
			_, err := config.ParseCommandLine([]string{"-c", "a.conf", "b.conf"})

			Expect(srvErrors.IsBadCommandLineArgumentError(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("more than once")))
		})

		It("should reject -c given twice", func() {
			_, err := config.ParseCommandLine([]string{"-c", "a.conf", "-c", "b.conf"})

			Expect(srvErrors.IsBadCommandLineArgumentError(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("option '--config-file' cannot be specified more than once")))
		})

		It("should reject more than one positional argument", func() {
			_, err := config.ParseCommandLine([]string{"a.conf", "b.conf"})

			Expect(srvErrors.IsBadCommandLineArgumentError(err)).To(BeTrue())
		})
	})

	Context("help", func() {
		It("should flag --help", func() {
			cl, err := config.ParseCommandLine([]string{"--help"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeTrue())
		})

		It("should flag -h next to other options", func() {
			cl, err := config.ParseCommandLine([]string{"--loglevel=1", "-h", "conf.txt"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeTrue())
		})

		// Given an invalid flag next to --help
		// When the command line is parsed
		// Then help should win over the argument error
		It("should win over invalid arguments", func() {
			cl, err := config.ParseCommandLine([]string{"--no-such-flag", "--help"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeTrue())
		})

		It("should win over a repeated option", func() {
			cl, err := config.ParseCommandLine([]string{"--loglevel=1", "--loglevel=2", "-h"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeTrue())
		})

		It("should find -h inside a shorthand group", func() {
			cl, err := config.ParseCommandLine([]string{"-hx"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeTrue())
		})

		It("should honour -h=false", func() {
			cl, err := config.ParseCommandLine([]string{"-h=false"})

			Expect(err).NotTo(HaveOccurred())
			Expect(cl.HelpRequested).To(BeFalse())
		})
	})

	// Given the same option typed twice
	// When the command line is parsed
	// Then the parse should fail instead of keeping the last value
	DescribeTable("repeated options",
		func(args ...string) {
			_, err := config.ParseCommandLine(args)

			Expect(srvErrors.IsBadCommandLineArgumentError(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("cannot be specified more than once")))
		},
		Entry("port", "--scheduler_dbport=1", "--scheduler_dbport=2"),
		Entry("same value twice", "--scheduler_dbuser=mns", "--scheduler_dbuser", "mns"),
		Entry("long and short form", "--config-file=a.conf", "-c", "b.conf"),
		Entry("log level", "--loglevel=0", "--loglevel=5"),
	)

	DescribeTable("bad arguments",
		func(args ...string) {
			_, err := config.ParseCommandLine(args)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsBadCommandLineArgumentError(err)).To(BeTrue())
			Expect(err.Error()).To(HavePrefix("Bad parameter: "))
		},
		Entry("unknown flag", "--no-such-flag"),
		Entry("port out of range", "--scheduler_dbport=70000"),
		Entry("port not a number", "--scheduler_dbport=postgres"),
		Entry("negative log level", "--loglevel=-1"),
		Entry("missing flag value", "--scheduler_dbuser"),
	)
})

var _ = Describe("CommandLineLayer", func() {
	// Given a flag set where defaults were pre-filled but nothing was typed
	// When the layer is built
	// Then no default-filled flag should appear in the layer
	It("should ignore flag defaults", func() {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		config.RegisterFlags(fs)
		Expect(fs.Parse([]string{})).To(Succeed())

		port, err := fs.GetUint16(config.KeySchedulerDBPort)
		Expect(err).NotTo(HaveOccurred())
		Expect(port).To(Equal(uint16(5432)))

		cl, err := config.CommandLineLayer(fs, fs.Args())
		Expect(err).NotTo(HaveOccurred())
		Expect(cl.Layer.Len()).To(BeZero())
	})

	It("should skip flags the schema does not know", func() {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		config.RegisterFlags(fs)
		fs.Bool("verbose", false, "")
		Expect(fs.Parse([]string{"--verbose", "--scheduler_database=mns"})).To(Succeed())

		cl, err := config.CommandLineLayer(fs, fs.Args())

		Expect(err).NotTo(HaveOccurred())
		Expect(cl.Layer.Keys()).To(Equal([]string{config.KeySchedulerDatabase}))
	})
})

var _ = Describe("HelpRequested", func() {
	DescribeTable("detection",
		func(expected bool, args ...string) {
			Expect(config.HelpRequested(args)).To(Equal(expected))
		},
		Entry("short", true, "-h"),
		Entry("long", true, "--help"),
		Entry("long with true", true, "--help=true"),
		Entry("long with false", false, "--help=false"),
		Entry("after terminator", false, "--", "--help"),
		Entry("absent", false, "conf.txt"),
		Entry("leading shorthand group", true, "-hx"),
		Entry("trailing shorthand group", true, "-xh"),
		Entry("short with false", false, "-h=false"),
		Entry("value of -c", false, "-c", "-h"),
		Entry("value attached to -c", false, "-ch.conf"),
		Entry("value of a long option", false, "--scheduler_dbpassword", "--help"),
		Entry("after a long option with its value", true, "--scheduler_dbpassword=x", "-h"),
	)
})
