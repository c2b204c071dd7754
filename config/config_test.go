package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/envelope-logger/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir string
		origDir string
	)

	BeforeEach(func() {
		var err error
		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(tempDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		os.RemoveAll(tempDir)
		os.Unsetenv("NODE_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_DIR")
		os.Unsetenv("LOG_INDEX")
		os.Unsetenv("LOG_HOSTNAME")
	})

	Describe("Load", func() {
		Context("without config file or environment", func() {
			It("should use defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal("development"))
				Expect(cfg.Level).To(Equal("info"))
				Expect(cfg.Dir).To(Equal("logs/"))
				Expect(cfg.Index).To(Equal("UPPER_FUNNEL_FBCA_CONSUMER"))
				Expect(cfg.Hostname).NotTo(BeEmpty())
				Expect(cfg.IsDevelopment()).To(BeTrue())
			})
		})

		Context("with environment variables", func() {
			BeforeEach(func() {
				os.Setenv("NODE_ENV", "production")
				os.Setenv("LOG_LEVEL", "warn")
				os.Setenv("LOG_DIR", "/var/log/consumer")
				os.Setenv("LOG_INDEX", "MY_INDEX")
				os.Setenv("LOG_HOSTNAME", "worker-1")
			})

			It("should read every setting from the environment", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal("production"))
				Expect(cfg.Level).To(Equal("warn"))
				Expect(cfg.Dir).To(Equal("/var/log/consumer"))
				Expect(cfg.Index).To(Equal("MY_INDEX"))
				Expect(cfg.Hostname).To(Equal("worker-1"))
				Expect(cfg.IsDevelopment()).To(BeFalse())
			})

			It("should pass any level name through", func() {
				os.Setenv("LOG_LEVEL", "verbose")
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Level).To(Equal("verbose"))

				os.Setenv("LOG_LEVEL", "DEBUG")
				cfg, err = config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Level).To(Equal("DEBUG"))
			})
		})

		Context("with a config file", func() {
			BeforeEach(func() {
				content := `
environment: "staging"
level: "debug"
index: "FILE_INDEX"
`
				err := os.WriteFile(filepath.Join(tempDir, "logging.yaml"), []byte(content), 0644)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should load values from the file", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Environment).To(Equal("staging"))
				Expect(cfg.Level).To(Equal("debug"))
				Expect(cfg.Index).To(Equal("FILE_INDEX"))
				Expect(cfg.Dir).To(Equal("logs/"))
			})

			It("should let the environment override the file", func() {
				os.Setenv("LOG_INDEX", "ENV_INDEX")
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Index).To(Equal("ENV_INDEX"))
			})
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Config{
				Environment: "production",
				Level:       "info",
				Dir:         "logs/",
				Index:       "IDX",
				Hostname:    "host-a",
			}
		})

		It("should accept a complete config", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should require an environment", func() {
			cfg.Environment = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("environment")))
		})

		It("should require a level", func() {
			cfg.Level = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("level")))
		})

		It("should require an index", func() {
			cfg.Index = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("index")))
		})

		It("should reject host names containing separators", func() {
			cfg.Hostname = "a/b"
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("hostname")))
		})
	})
})
