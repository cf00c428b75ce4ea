// Package lang converts the array literal returned by a PHP source file into
// a language-neutral value tree, without executing any PHP.
//
// # Input
//
// The typical input is a translation or configuration file:
//
//	<?php
//	return [
//	    'title'   => 'Welcome',
//	    'count'   => 3,
//	    'enabled' => true,
//	    'nav'     => ['home', 'about'],
//	    'footer'  => 'Copyright ' . '2024',
//	    'hint'    => __('Press :key', 'enter'),
//	];
//
// [Parse] keeps only the text after the first "return", hands it to a
// [Grammar] (tree-sitter by default), and resolves the first top-level
// statement if it is an array literal. Anything else yields an empty map.
//
// # Values
//
// A [Value] is a string, integer, boolean, list, or map. Map keys are
// strings or integers and keep their source order.
//
//   - An empty array is an empty list.
//   - An array is a map only when every entry has a key. Otherwise it is a
//     list, and keyed entries inside it become one-entry maps.
//   - Duplicate keys overwrite earlier ones in place. Boolean keys become 0
//     and 1 and may collide with integer keys.
//   - "a" . "b" concatenates the text of both operands (see [Stringify]).
//   - Function calls are not evaluated. They render as placeholders:
//     __('x') is "「x」", t('x', 2) is "「t(x, 2)」", and a call without
//     arguments is "「」".
//
// # Errors
//
// Any node outside the supported subset, such as a variable, null, or an
// object instantiation, aborts the conversion with [ErrUnsupportedValueKind]
// or [ErrUnsupportedKeyKind]. The returned [*Error] carries the grammar's
// kind tag and a dump of the node as slog attributes.
package lang
