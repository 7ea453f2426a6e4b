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
Package condition compiles row predicates with expr-lang and applies them
to tables.

A Condition sees one row at a time as a column-name environment. Any
evaluation failure, including a comparison against a null cell, classifies
the row as false; predicates never abort a run. Between builds the closed
interval check used for range labeling.
*/
package condition
