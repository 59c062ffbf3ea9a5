// Package fieldpath parses the dot-separated series paths used as column names,
// e.g. "readings.truck_1.South.Trish.v2_3.velocity" or "avg(diagnostics.truck_1.current_load)".
package fieldpath

import (
	"fmt"
	"strings"
)

// Separator between path nodes
const Separator = "."

// FieldAccessError field access error
type FieldAccessError struct {
	Path    string
	Message string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("field access error for path '%s': %s", e.Path, e.Message)
}

// Split splits a path into its nodes. Empty nodes are kept so that positions stay stable.
func Split(fieldPath string) []string {
	return strings.Split(fieldPath, Separator)
}

// GetFieldPathDepth returns the number of nodes in a path.
func GetFieldPathDepth(fieldPath string) int {
	if fieldPath == "" {
		return 0
	}
	return strings.Count(fieldPath, Separator) + 1
}

// IsNestedField checks if the name contains at least one separator.
func IsNestedField(fieldName string) bool {
	return strings.Contains(fieldName, Separator)
}

// StripCall removes a trailing function-call decoration:
// "avg(a.b)" returns "a.b", "a.b" is returned unchanged.
func StripCall(name string) string {
	if !strings.HasSuffix(name, ")") {
		return name
	}
	open := strings.Index(name, "(")
	return name[open+1 : len(name)-1]
}

// Node returns node idx of the path (negative idx counts from the end) after
// checking the path has at least minDepth nodes.
func Node(fieldPath string, idx, minDepth int) (string, error) {
	nodes := Split(fieldPath)
	if len(nodes) < minDepth {
		return "", &FieldAccessError{
			Path:    fieldPath,
			Message: fmt.Sprintf("too few path nodes: want at least %d, got %d", minDepth, len(nodes)),
		}
	}
	if idx < 0 {
		idx += len(nodes)
	}
	if idx < 0 || idx >= len(nodes) {
		return "", &FieldAccessError{
			Path:    fieldPath,
			Message: fmt.Sprintf("node %d out of range", idx),
		}
	}
	return nodes[idx], nil
}

// EntityField returns the entity node and the last node of a series path with at
// least minDepth nodes, e.g. ("truck_1", "velocity") for entity index 1.
func EntityField(fieldPath string, entityIdx, minDepth int) (entity, field string, err error) {
	entity, err = Node(fieldPath, entityIdx, minDepth)
	if err != nil {
		return "", "", err
	}
	field, err = Node(fieldPath, -1, minDepth)
	if err != nil {
		return "", "", err
	}
	return entity, field, nil
}

// SplitLast splits a path at its last separator: "fleet.truck_1.current_load"
// returns ("fleet.truck_1", "current_load").
func SplitLast(fieldPath string) (prefix, last string, err error) {
	i := strings.LastIndex(fieldPath, Separator)
	if i < 0 {
		return "", "", &FieldAccessError{Path: fieldPath, Message: "no separator"}
	}
	return fieldPath[:i], fieldPath[i+1:], nil
}
