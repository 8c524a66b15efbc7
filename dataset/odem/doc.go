// Package odem reads ODEM dependency documents (the XML format written by
// Class Dependency Analyzer) and turns them into a core.Graph.
//
// Document shape:
//
//	<ODEM>
//	  <header><created-by><exporter version="..">..</exporter><provider>..</provider></created-by></header>
//	  <context name="..">
//	    <container name="x.jar" classification="jar">
//	      <namespace name="org.example">
//	        <type name="org.example.Foo" classification="class" visibility="public">
//	          <dependencies count="1">
//	            <depends-on name="org.other.Bar" classification="uses"/>
//	          </dependencies>
//	        </type>
//	      </namespace>
//	    </container>
//	  </context>
//	</ODEM>
//
// Exactly one container per document is supported. Two graph granularities
// are offered; see Granularity.
package odem
