// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package faultdomain derives the fault-domain count of every Azure region from
the published managed-disk documentation and compiles it into a single ARM
template expression.

There is no API for the fault-domain count of a location, so the source of
truth is a markdown pipe table:

	| Region     | Max # of fault domains |
	|------------|------------------------|
	| East US    | 3                      |
	| West US    | 2                      |

Only regions with three fault domains are carried in the expression. The
canary region centraluseuap always evaluates to 1 and every other region to 2.

Parsing is a pure function from text to Table, so a change in the document
layout fails a unit test rather than a deployment:

	text, err := faultdomain.Fetch(ctx, serializer.NewHttpReader(), defaults.FaultDomainSourceURL)
	if err != nil {
	    return err
	}
	result, err := faultdomain.Synthesize(text)
	if err != nil {
	    return err
	}
	fmt.Println(result.Expression)

Result.GoCode is a snippet that declares the readable, indented expression
and collapses it at runtime with the same whitespace rule as CollapseWhitespace,
so the collapsed value always equals Result.Expression.
*/
package faultdomain
