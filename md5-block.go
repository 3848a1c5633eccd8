// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

// blockGeneric folds every block of the padded buffer p into dig, one
// block at a time.
func blockGeneric(dig *digest, p []byte) {
	var x block
	r := newBlockReader(p)
	for r.next(&x) {
		w := *dig
		for i := 0; i < steps; i++ {
			w.step(i, &x)
		}
		*dig = dig.add(w)
	}
}
