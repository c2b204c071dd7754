// Package taxonomy defines the shared vocabulary used to tag log events.
//
// The values are fixed strings that downstream search indexes correlate on,
// so they must not be renamed or extended at runtime. A LogEntry combines them
// into a single record that can be passed to any leveled logging call:
//
//	entry := taxonomy.LogEntry{
//		EventCategory:   taxonomy.CategoryBusiness,
//		ApplicationName: "fbca-consumer",
//		Component:       string(taxonomy.ComponentKafka),
//		EventType:       taxonomy.BusinessSPSE,
//		EventName:       "offer-accepted",
//	}
//	log.Info("offer accepted", entry)
//
// Nothing in the logging path validates an entry. Callers that want to reject
// malformed tags before emitting them can call LogEntry.Validate.
package taxonomy
