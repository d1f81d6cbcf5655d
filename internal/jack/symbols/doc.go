// Package symbols implements the two-scope identifier table of the Jack
// front end: a class scope for static and field variables and a
// subroutine scope for arguments and locals.
package symbols
