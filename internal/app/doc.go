// Package app holds the feedback application's state machine: the active
// view, the four form fields, their validation and the submit transition.
//
// Front ends translate user input into Msg values and feed them to Update,
// then render the returned State. Nothing in this package performs I/O.
package app
