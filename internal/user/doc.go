// Package user provides the user record and the repositories that manage it.
//
// Two repository front-ends expose identical behavior over any storage
// backend: Repository binds its backend type at construction through a type
// parameter, DynRepository holds the backend behind the interface so the
// implementation can be chosen at run time. Divergence between the two is a
// defect; DynRepository delegates to the same operation logic.
package user
