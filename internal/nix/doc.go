// Package nix reads package lists out of Nix expression files.
//
// It is not a Nix evaluator. The file is lexed and parsed just far enough to
// find the top-level attribute set of a module and the list bound to an
// attribute path inside it:
//
//	{ config, pkgs, ... }:
//	{
//	  environment.systemPackages = with pkgs; [ git vim ];
//	  homebrew = {
//	    brews = [ "wget" ];
//	    casks = [ "firefox" ];
//	  };
//	}
//
//	vals, err := nix.ArrayValues(src, "environment.systemPackages")
//	// vals == []string{"git", "vim"}
//
// The top-level set is found by looking through lambda headers, let … in,
// with …; and assert …; prefixes and parentheses. Attribute paths match both
// dotted bindings (a.b = …) and nested sets (a = { b = …; }). A list wrapped
// in with or parentheses is unwrapped.
//
// Each returned value is the source text of one list element, so strings
// keep their quotes and parenthesised applications count as one element.
package nix
