// Code generated by ent, DO NOT EDIT.

package sessionnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sundialhq/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldSessionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldTitle, v))
}

// ProviderDocID applies equality check predicate on the "provider_doc_id" field. It's identical to ProviderDocIDEQ.
func ProviderDocID(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldProviderDocID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldURL, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldSessionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldTitle, v))
}

// ProviderDocIDEQ applies the EQ predicate on the "provider_doc_id" field.
func ProviderDocIDEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldProviderDocID, v))
}

// ProviderDocIDNEQ applies the NEQ predicate on the "provider_doc_id" field.
func ProviderDocIDNEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldProviderDocID, v))
}

// ProviderDocIDIn applies the In predicate on the "provider_doc_id" field.
func ProviderDocIDIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldProviderDocID, vs...))
}

// ProviderDocIDNotIn applies the NotIn predicate on the "provider_doc_id" field.
func ProviderDocIDNotIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldProviderDocID, vs...))
}

// ProviderDocIDGT applies the GT predicate on the "provider_doc_id" field.
func ProviderDocIDGT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldProviderDocID, v))
}

// ProviderDocIDGTE applies the GTE predicate on the "provider_doc_id" field.
func ProviderDocIDGTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldProviderDocID, v))
}

// ProviderDocIDLT applies the LT predicate on the "provider_doc_id" field.
func ProviderDocIDLT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldProviderDocID, v))
}

// ProviderDocIDLTE applies the LTE predicate on the "provider_doc_id" field.
func ProviderDocIDLTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldProviderDocID, v))
}

// ProviderDocIDContains applies the Contains predicate on the "provider_doc_id" field.
func ProviderDocIDContains(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContains(FieldProviderDocID, v))
}

// ProviderDocIDHasPrefix applies the HasPrefix predicate on the "provider_doc_id" field.
func ProviderDocIDHasPrefix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasPrefix(FieldProviderDocID, v))
}

// ProviderDocIDHasSuffix applies the HasSuffix predicate on the "provider_doc_id" field.
func ProviderDocIDHasSuffix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasSuffix(FieldProviderDocID, v))
}

// ProviderDocIDIsNil applies the IsNil predicate on the "provider_doc_id" field.
func ProviderDocIDIsNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIsNull(FieldProviderDocID))
}

// ProviderDocIDNotNil applies the NotNil predicate on the "provider_doc_id" field.
func ProviderDocIDNotNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotNull(FieldProviderDocID))
}

// ProviderDocIDEqualFold applies the EqualFold predicate on the "provider_doc_id" field.
func ProviderDocIDEqualFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldProviderDocID, v))
}

// ProviderDocIDContainsFold applies the ContainsFold predicate on the "provider_doc_id" field.
func ProviderDocIDContainsFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldProviderDocID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldURL, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionNote {
	return predicate.SessionNote(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionNote {
	return predicate.SessionNote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.SessionNote {
	return predicate.SessionNote(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionNote) predicate.SessionNote {
	return predicate.SessionNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionNote) predicate.SessionNote {
	return predicate.SessionNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionNote) predicate.SessionNote {
	return predicate.SessionNote(sql.NotPredicates(p))
}
