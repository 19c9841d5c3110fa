// Package services implements the core application services behind the
// driving ports: the table normalizer and the editor state machine.
package services
