package handlers

import (
	"encoding/json"
	"log"

	"github.com/you/marketsvc/domain"
)

// auditLog writes one structured audit line per business event
func auditLog(event *domain.AuditEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("%s: marshal failed: %v", event.EventType, err)
		return
	}
	log.Printf("%s: %s", event.EventType, data)
}
