// Copyright 2026 Nexusgraph Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

// Type identifies the kind of an atom: what category of node or link it
// is. Node types occupy the range [nodeBase, linkBase); link types occupy
// [linkBase, ...). Callers are free to register additional node or link
// types by picking unused values in the matching range, the way a type
// hierarchy's nameserver would; hyperplan itself only special-cases the
// handful of structural types below.
type Type uint16

// TypeInvalid is the zero Type; no atom has this type.
const TypeInvalid Type = 0

const (
	nodeBase Type = 1
	linkBase Type = 1000
)

// Standard node types.
const (
	// ConceptNode names an ordinary domain entity.
	ConceptNode Type = nodeBase
	// PredicateNode names a relation or property.
	PredicateNode Type = nodeBase + 1
	// SchemaNode names an evaluatable function.
	SchemaNode Type = nodeBase + 2
	// VariableNode is a placeholder to be grounded by the match engine.
	// Never a starter (spec.md §3 invariants).
	VariableNode Type = nodeBase + 3
	// GlobNode is a placeholder matching zero or more atoms. Never a
	// starter, same as VariableNode.
	GlobNode Type = nodeBase + 4
	// DefinedSchemaNode names a DefinitionRegistry entry to be expanded
	// just-in-time (spec.md §4.7).
	DefinedSchemaNode Type = nodeBase + 5
)

// Standard link types.
const (
	// ListLink is an ordered, otherwise unconstrained tuple.
	ListLink Type = linkBase
	// EvaluationLink applies a PredicateNode/SchemaNode to an argument
	// list; a common evaluatable-holder shape.
	EvaluationLink Type = linkBase + 1
	// AndLink is conjunction.
	AndLink Type = linkBase + 2
	// OrLink is disjunction.
	OrLink Type = linkBase + 3
	// PresentLink asserts that its single child must exist (be groundable)
	// in the atomspace, without further constraint.
	PresentLink Type = linkBase + 4
	// ChoiceLink marks its children as alternative, potentially
	// disconnected sub-patterns (spec.md §4.1 step 3).
	ChoiceLink Type = linkBase + 5
	// QuoteLink is transparent to planning, opaque to matching (spec.md
	// §3 invariants).
	QuoteLink Type = linkBase + 6
	// LocalQuoteLink is QuoteLink's one-level variant: it suspends
	// quotation for exactly its immediate child, then resumes it below.
	LocalQuoteLink Type = linkBase + 7
)

// IsNodeType reports whether t is in the node range.
func IsNodeType(t Type) bool {
	return t >= nodeBase && t < linkBase
}

// IsLinkType reports whether t is in the link range.
func IsLinkType(t Type) bool {
	return t >= linkBase
}

// IsVariableType reports whether t is the standard VariableNode type.
func IsVariableType(t Type) bool {
	return t == VariableNode
}

// IsGlobType reports whether t is the standard GlobNode type.
func IsGlobType(t Type) bool {
	return t == GlobNode
}

// IsChoiceType reports whether t is the standard ChoiceLink type.
func IsChoiceType(t Type) bool {
	return t == ChoiceLink
}

// IsQuoteType reports whether t is QuoteLink or LocalQuoteLink.
func IsQuoteType(t Type) bool {
	return t == QuoteLink || t == LocalQuoteLink
}

// IsDefinedType reports whether t is the standard DefinedSchemaNode type.
func IsDefinedType(t Type) bool {
	return t == DefinedSchemaNode
}
