// Package fill implements the fillPassword message and the receiving side
// that places a password into a form field of an HTML document.
//
// A target field is chosen in this order:
//  1. The focused element (the first element carrying autofocus), if it is
//     a password, text or email input, a textarea, or contenteditable
//  2. The first password input
//  3. The first text input whose name, id or placeholder contains "pass"
//
// Inputs get their value attribute set; textareas and contenteditable
// elements get their text replaced. The returned Target lists the events a
// browser page would observe.
package fill
