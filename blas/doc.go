/*
Package blas provides implementations of sparse BLAS (Basic Linear Algebra Subprograms) routines
for sparse vector arithmetic: the level-1 scatter (Dussc), dot product
(Dusdot) and axpy (Dusaxpy) kernels.

See http://www.netlib.org/blas/blast-forum/chapter3.pdf for further information.
*/
package blas
