package logger_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/envelope-logger/pkg/logger"
)

var _ = Describe("Format", func() {
	It("should keep the level and copy message and metadata into event data", func() {
		env := logger.Format(logger.Record{
			Level:   "warn",
			Message: "offer rejected",
			Metadata: map[string]any{
				"orderId": 42,
				"nested":  map[string]any{"a": []int{1, 2}},
			},
		}, "production", "MY_INDEX", fixedTime)

		Expect(env.EventHeader).To(Equal(logger.Header{
			EventDateTime: "2026-10-18T09:30:00.123Z",
			Level:         "warn",
			Environment:   "production",
			Target:        "MY_INDEX",
		}))
		Expect(env.EventData.Message).To(Equal("offer rejected"))
		Expect(env.EventData.Fields).To(Equal(map[string]any{
			"orderId": 42,
			"nested":  map[string]any{"a": []int{1, 2}},
		}))
	})

	It("should keep environment and target out of metadata's reach", func() {
		env := logger.Format(logger.Record{
			Level:    "info",
			Message:  "m",
			Metadata: map[string]any{"environment": "spoofed", "target": "other"},
		}, "production", "MY_INDEX", fixedTime)

		Expect(env.EventHeader.Environment).To(Equal("production"))
		Expect(env.EventHeader.Target).To(Equal("MY_INDEX"))
		Expect(env.EventData.Fields).To(HaveKeyWithValue("environment", "spoofed"))
		Expect(env.EventData.Fields).To(HaveKeyWithValue("target", "other"))
	})

	It("should drop reserved metadata keys", func() {
		env := logger.Format(logger.Record{
			Level:    "info",
			Message:  "real",
			Metadata: map[string]any{"message": "fake", "level": "error", "k": "v"},
		}, "dev", "IDX", fixedTime)

		Expect(env.EventData.Message).To(Equal("real"))
		Expect(env.EventData.Fields).To(Equal(map[string]any{"k": "v"}))
	})

	It("should not modify the caller's metadata", func() {
		meta := map[string]any{"message": "x", "k": 1}
		logger.Format(logger.Record{Metadata: meta}, "dev", "IDX", fixedTime)
		Expect(meta).To(HaveLen(2))
	})

	It("should tolerate an empty record", func() {
		env := logger.Format(logger.Record{}, "dev", "IDX", fixedTime)
		Expect(env.EventHeader.Level).To(BeEmpty())
		Expect(env.EventData.Message).To(BeEmpty())

		out, err := json.Marshal(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(`"eventData":{"message":""}`))
	})
})

var _ = Describe("Envelope JSON", func() {
	var env logger.Envelope

	BeforeEach(func() {
		env = logger.Format(logger.Record{
			Level:   "info",
			Message: "hello",
			Metadata: map[string]any{
				"zeta":  "last",
				"alpha": true,
				"nested": map[string]any{
					"list":  []any{"a", 1.5, map[string]any{"deep": "yes"}},
					"count": 3.0,
				},
			},
		}, "production", "MY_INDEX", fixedTime)
	})

	It("should emit exactly eventHeader and eventData", func() {
		out, err := json.Marshal(env)
		Expect(err).NotTo(HaveOccurred())

		var top map[string]json.RawMessage
		Expect(json.Unmarshal(out, &top)).To(Succeed())
		Expect(top).To(HaveLen(2))
		Expect(top).To(HaveKey("eventHeader"))
		Expect(top).To(HaveKey("eventData"))
	})

	It("should order the header first and the message first in event data", func() {
		out, err := json.Marshal(env)
		Expect(err).NotTo(HaveOccurred())

		s := string(out)
		Expect(s).To(HavePrefix(`{"eventHeader":{"eventDateTime":"2026-10-18T09:30:00.123Z","level":"info","environment":"production","target":"MY_INDEX"},`))
		Expect(s).To(ContainSubstring(`"eventData":{"message":"hello","alpha":true,`))
		Expect(strings.Index(s, `"nested"`)).To(BeNumerically("<", strings.Index(s, `"zeta"`)))
	})

	It("should round-trip through JSON", func() {
		out, err := json.Marshal(env)
		Expect(err).NotTo(HaveOccurred())

		var back logger.Envelope
		Expect(json.Unmarshal(out, &back)).To(Succeed())
		Expect(back).To(Equal(env))
	})

	It("should stringify values JSON cannot encode", func() {
		env.EventData.Fields["ch"] = make(chan int)
		out, err := json.Marshal(env)
		Expect(err).NotTo(HaveOccurred())

		var back logger.Envelope
		Expect(json.Unmarshal(out, &back)).To(Succeed())
		Expect(back.EventData.Fields["ch"]).To(BeAssignableToTypeOf(""))
	})
})
