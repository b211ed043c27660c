// Code generated by ent, DO NOT EDIT.

package progressdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressdoc type in the database.
	Label = "progress_doc"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldQuota holds the string denoting the quota field in the database.
	FieldQuota = "quota"
	// FieldRevision holds the string denoting the revision field in the database.
	FieldRevision = "revision"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progressdoc in the database.
	Table = "progress_docs"
)

// Columns holds all SQL columns for progressdoc fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTrack,
	FieldLevel,
	FieldQuota,
	FieldRevision,
	FieldData,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TrackValidator is a validator for the "track" field. It is called by the builders before save.
	TrackValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultQuota holds the default value on creation for the "quota" field.
	DefaultQuota int
	// DefaultRevision holds the default value on creation for the "revision" field.
	DefaultRevision int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressDoc queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByQuota orders the results by the quota field.
func ByQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuota, opts...).ToFunc()
}

// ByRevision orders the results by the revision field.
func ByRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevision, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
