// Package record defines the multi-valued, insertion-ordered Adlib record.
package record
