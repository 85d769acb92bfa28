/*
Command mds declares record-type schemas, runs a scripted
declare/write/roll_back/branch-isolation walkthrough, and exports
resolved branch values for inspection.

Subcommands:

	usage: mds declare schema.yaml
	       mds demo
	       mds snapshot schema.yaml out.sqlite
*/
package main
