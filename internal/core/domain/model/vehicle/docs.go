// Package vehicle contains the Vehicle aggregate and its availability state
// machine. A vehicle belongs to exactly one owner, carries the compliance
// record required to keep it on the road, and is either free or engaged by a
// single driver at a time.
package vehicle
