// Package hcl loads cube catalog definitions written in HCL and translates
// them into the format-agnostic model in internal/config.
//
// A catalog consists of one cube block plus one view block per candidate
// aggregate view, optionally spread across multiple .hcl files:
//
//	cube "sales" {
//	  description = "retail sales fact table"
//	}
//
//	view "ABCD" {
//	  id           = 1
//	  dimensions   = ["a", "b", "c", "d"]
//	  measures     = ["sum_price"]
//	  row_estimate = 1000 * 1000
//
//	  layout {
//	    id       = 10001
//	    shard_by = ["a"]
//	  }
//	}
package hcl
