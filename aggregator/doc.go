/*
 * Copyright 2025 The RowForge Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package aggregator implements grouped aggregation over tables.

Rows are partitioned into buckets by a tuple of group-column values, and
one incremental aggregator per requested spec folds each bucket. Rows with
a null key component form no bucket; null source values are skipped inside
a bucket, and a bucket that saw no value yields a null cell.

# Ordering

Output rows are ordered ascending by group key, so equal inputs produce
identical output no matter how rows arrived. SortBy switches to an explicit
ordering over one output column, descending or ascending, with nulls last.

# Partitioned execution

Partitions(n) aggregates contiguous row ranges on separate goroutines and
merges the partial bucket states by key. Aggregator merges are associative
and commutative (averages merge as (sum, count) pairs), so the result is
independent of partition boundaries and scheduling.
*/
package aggregator
