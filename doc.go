// Package hufftree builds optimal binary prefix codes (Huffman codes) for a
// finite alphabet, given the frequency of each symbol.
//
// Build merges the two lightest trees until one remains, producing a Tree
// whose leaves are the symbols.  Extract walks that Tree and assigns each
// symbol the path from the root to its leaf, with 0 for a left branch and 1
// for a right branch.
//
// Ties between equally weighted trees are broken by insertion order: leaves
// are inserted in ascending symbol order, and each merged tree is inserted
// after everything that came before it.  The same Frequencies therefore
// always produce the same Codebook.
//
// An alphabet of exactly one symbol has no branches at all.  Rather than
// emit an empty codeword, Extract assigns that symbol the one-bit code "0".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
